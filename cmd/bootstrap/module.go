package bootstrap

import (
	"token-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	PaymentModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
