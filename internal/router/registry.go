package router

import "github.com/gin-gonic/gin"

const apiBasePath = "/api"

// Registry collects feature modules and mounts them under the shared API
// group in one pass during startup.
type Registry struct {
	engine  *gin.Engine
	api     *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{engine: engine, api: engine.Group(apiBasePath)}
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.api)
	}
}
