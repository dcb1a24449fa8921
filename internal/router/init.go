package router

import (
	"user-admin-service/internal/application"
	"user-admin-service/internal/container"
	domainsvc "user-admin-service/internal/domain/service"
	pginfra "user-admin-service/internal/infrastructure/postgres"
	handlers "user-admin-service/internal/interface/http"
	"user-admin-service/internal/router/modules"
	"user-admin-service/pkg/helpers"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	roles := pginfra.NewRoleRepository(pool)
	audits := pginfra.NewAuditEventRepository(pool)
	unique := pginfra.NewUniquenessChecker(pool)
	tx := pginfra.NewTxManager(pool)

	domain := domainsvc.NewUserDomainService(unique, helpers.BcryptHasher{})

	userSvc := application.NewUserService(
		users,
		domain,
		application.NewRoleService(roles),
		application.NewAuditService(audits),
		tx,
		container.GetLogger(),
	)
	if es := container.GetES(); es != nil {
		userSvc.Search = application.NewSearchIndex(es, container.GetConfig().ESUsersIndex)
	}
	if pub := container.GetRabbitPub(); pub != nil {
		userSvc.Notifier = application.NewAuditNotifier(pub)
	}
	userSvc.GCS = container.GetGCS()
	userSvc.GCSBucket = container.GetConfig().GCSBucket

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetRedis(), container.GetLogger())

	userHandler := handlers.NewUserHandler(userSvc, container.GetLogger())
	authHandler := handlers.NewAuthHandler(
		authSvc,
		container.GetLogger(),
		container.GetConfig().CookieDomain,
		container.GetConfig().CookieSecure,
	)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
}
