package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/stirwin/form-builder/config"
)

type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config
}
