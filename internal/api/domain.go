package api

import (
	"github.com/JaimeStill/promptcraft/internal/favorites"
	"github.com/JaimeStill/promptcraft/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts   prompts.System
	Favorites favorites.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Prompts:   prompts.New(runtime.Store, runtime.Logger),
		Favorites: favorites.New(runtime.Store, runtime.Logger),
	}
}
