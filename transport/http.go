package transport

import (
	"net/http"
	"strconv"

	catalogapp "github.com/decomizer/storefront/application/catalog"
	dashboardapp "github.com/decomizer/storefront/application/dashboard"
	notificationapp "github.com/decomizer/storefront/application/notification"
	orderapp "github.com/decomizer/storefront/application/order"
	userapp "github.com/decomizer/storefront/application/user"
	visitapp "github.com/decomizer/storefront/application/visit"
	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp         userapp.UserApp
	CatalogApp      catalogapp.CatalogApp
	OrderApp        orderapp.OrderApp
	DashboardApp    dashboardapp.DashboardApp
	NotificationApp notificationapp.NotificationApp
	VisitApp        visitapp.VisitApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := mux.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/visits", rh.RecordVisit).Methods(http.MethodPost)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id:[0-9]+}/subcategories", rh.GetSubCategoryNavigation).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)

	// protected routes
	api.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}/pay", rh.PayOrder).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/dashboard", rh.GetDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/{id:[0-9]+}/read", rh.MarkNotificationRead).Methods(http.MethodPatch)
	admin.Use(AdminMiddleware(rh.UserApp))

	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/order/{id:[0-9]+}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(internalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

// queryUint reads an optional positive integer query parameter.
func queryUint(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return n, nil
}
