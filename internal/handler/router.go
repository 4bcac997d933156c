package handler

import (
	"log/slog"
	"net/http"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/handler/middleware"
	"course-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	User         *api.UserHandler
	Course       *api.CourseHandler
	DiscountCode *api.DiscountCodeHandler
	Review       *api.ReviewHandler
	Payment      *api.PaymentHandler
	Transaction  *api.TransactionHandler
	ExchangeRate *api.ExchangeRateHandler
	Job          *api.JobHandler

	ManualTransaction *api.ManualTransactionHandler
	WebForm           *api.WebFormHandler
	Stats             *api.StatsHandler
	Cart              *api.CartHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, am *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := am.RequireAuth()
	admin := am.RequireRoleAtLeast(user.RoleAdmin)
	superAdmin := am.RequireRoleAtLeast(user.RoleSuperAdmin)
	job := middleware.RequireJobToken(cfg.Jobs.Token)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
			{Method: http.MethodPost, Path: "/verify-email", Handler: h.Auth.VerifyEmail},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodPatch, Path: "/password", Handler: h.Auth.ChangePassword, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodGet, Path: "/me/credit", Handler: h.User.MyCredit, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me/cart", Handler: h.Cart.Get, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/me/cart", Handler: h.Cart.Add, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/me/cart", Handler: h.Cart.Remove, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/me/cart", Handler: h.Cart.Remove, Mw: []gin.HandlerFunc{requireAuth}},
		})
		addRoutes(apiGroup.Group("/credits"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.User.GetCredit, Mw: []gin.HandlerFunc{requireAuth, admin}},
		})

		courses := apiGroup.Group("/courses")
		addRoutes(courses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Course.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Course.Get},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Course.Reviews},
			{Method: http.MethodPost, Path: "", Handler: h.Course.Create, Mw: []gin.HandlerFunc{requireAuth, admin}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Course.Update, Mw: []gin.HandlerFunc{requireAuth, admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Course.Delete, Mw: []gin.HandlerFunc{requireAuth, admin}},
		})

		// Same handlers as the public catalog; includeInactive is honoured here.
		adminCourses := apiGroup.Group("/admin/courses")
		adminCourses.Use(requireAuth, admin)
		addRoutes(adminCourses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Course.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Course.Get},
		})

		coupons := apiGroup.Group("/coupons")
		coupons.Use(requireAuth, admin)
		addRoutes(coupons, []route{
			{Method: http.MethodGet, Path: "", Handler: h.DiscountCode.ListCoupons},
			{Method: http.MethodGet, Path: "/:id", Handler: h.DiscountCode.GetCoupon},
			{Method: http.MethodPost, Path: "", Handler: h.DiscountCode.CreateCoupon},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.DiscountCode.UpdateCoupon},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.DiscountCode.DeleteCoupon},
		})

		affiliates := apiGroup.Group("/affiliate-codes")
		affiliates.Use(requireAuth, admin)
		addRoutes(affiliates, []route{
			{Method: http.MethodGet, Path: "", Handler: h.DiscountCode.ListAffiliateCodes},
			{Method: http.MethodGet, Path: "/:id", Handler: h.DiscountCode.GetAffiliateCode},
			{Method: http.MethodPost, Path: "", Handler: h.DiscountCode.CreateAffiliateCode},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.DiscountCode.UpdateAffiliateCode},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.DiscountCode.DeleteAffiliateCode},
		})

		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/:id/approve", Handler: h.Review.Approve, Mw: []gin.HandlerFunc{requireAuth, admin}},
		})

		payments := apiGroup.Group("/payments")
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/razorpay/checkout", Handler: h.Payment.RazorpayCheckout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/razorpay/verify", Handler: h.Payment.RazorpayVerify},
			{Method: http.MethodPost, Path: "/stripe/checkout", Handler: h.Payment.StripeCheckout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/stripe/webhook", Handler: h.Payment.StripeWebhook},
		})

		transactions := apiGroup.Group("/transactions")
		transactions.Use(requireAuth, superAdmin)
		addRoutes(transactions, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Transaction.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Transaction.Get},
		})

		manualTxs := apiGroup.Group("/manual-transactions")
		manualTxs.Use(requireAuth, superAdmin)
		addRoutes(manualTxs, []route{
			{Method: http.MethodGet, Path: "", Handler: h.ManualTransaction.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.ManualTransaction.Get},
			{Method: http.MethodPost, Path: "", Handler: h.ManualTransaction.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.ManualTransaction.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.ManualTransaction.Delete},
		})

		addRoutes(apiGroup.Group("/web-forms"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.WebForm.Submit},
			{Method: http.MethodGet, Path: "", Handler: h.WebForm.List, Mw: []gin.HandlerFunc{requireAuth, admin}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.WebForm.Get, Mw: []gin.HandlerFunc{requireAuth, admin}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.WebForm.Update, Mw: []gin.HandlerFunc{requireAuth, admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.WebForm.Delete, Mw: []gin.HandlerFunc{requireAuth, admin}},
		})

		addRoutes(apiGroup.Group("/stats"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Stats.Get, Mw: []gin.HandlerFunc{requireAuth, admin}},
		})

		addRoutes(apiGroup.Group("/exchange-rates"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.ExchangeRate.Get},
		})

		jobs := apiGroup.Group("/jobs")
		jobs.Use(job)
		addRoutes(jobs, []route{
			{Method: http.MethodPost, Path: "/exchange-rates", Handler: h.Job.ExchangeRates},
			{Method: http.MethodPost, Path: "/discount-window", Handler: h.Job.DiscountWindow},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
