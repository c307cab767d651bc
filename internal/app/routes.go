package app

import (
	"time"

	handlers "github.com/zachweston123/artwalls-payments/internal/handlers"
	"github.com/zachweston123/artwalls-payments/internal/ratelimit"
)

const (
	RouteWebhook  ratelimit.Route = "webhook"
	RouteCheckout ratelimit.Route = "checkout"
	RouteOrderGet ratelimit.Route = "order_get"
)

func registeredRoutes() []ratelimit.Route {
	return []ratelimit.Route{RouteWebhook, RouteCheckout, RouteOrderGet}
}

// rateLimitTable pairs every registered route with its rules. Validate
// checks it against registeredRoutes at startup, so adding an endpoint
// without deciding its limits refuses to boot instead of silently running
// unguarded.
func (a *App) rateLimitTable() ratelimit.RouteTable {
	rl := a.config.RateLimit
	return ratelimit.RouteTable{
		RouteWebhook: {
			{Name: "webhook-per-ip", Limit: rl.WebhookPerMinute, Window: time.Minute, KeyFn: ratelimit.ByClientIP},
		},
		RouteCheckout: {
			{Name: "checkout-per-ip", Limit: rl.CheckoutPerMinute, Window: time.Minute, KeyFn: ratelimit.ByClientIP},
			{Name: "checkout-per-user", Limit: rl.CheckoutPerMinute, Window: time.Minute, KeyFn: ratelimit.ByUserID},
		},
		RouteOrderGet: {
			{Name: "read-per-ip", Limit: rl.ReadPerMinute, Window: time.Minute, KeyFn: ratelimit.ByClientIP},
		},
	}
}

func (a *App) RegisterRoutes(wh *handlers.WebhookHandler, oh *handlers.OrderHandler, limiter *ratelimit.Limiter, table ratelimit.RouteTable) {
	a.Router.POST("/webhooks/gateway",
		ratelimit.Middleware(limiter, RouteWebhook, table[RouteWebhook]),
		wh.HandleNotification)

	a.Router.POST("/checkout",
		ratelimit.Middleware(limiter, RouteCheckout, table[RouteCheckout]),
		oh.CreateCheckout)

	a.Router.GET("/orders/:id",
		ratelimit.Middleware(limiter, RouteOrderGet, table[RouteOrderGet]),
		oh.GetOrder)
}
