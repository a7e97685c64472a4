package handlers

import "net/http"

// Routes собирает все обработчики сервера
type Routes struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Expenditure *ExpenditureHandler
	Income      *IncomeHandler
	Health      *HealthHandler
}

// Register регистрирует маршруты на mux. authGuard оборачивает защищенные
// маршруты; открытыми остаются только signup, login, refresh, logout и health.
// PATCH на профиле не регистрируется намеренно: ServeMux вернет 405.
func (rt *Routes) Register(mux *http.ServeMux, authGuard func(http.Handler) http.Handler) {
	protected := func(h http.HandlerFunc) http.Handler {
		return authGuard(h)
	}

	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("POST /auth/signup", rt.Auth.Signup)
	mux.HandleFunc("POST /auth/login", rt.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", rt.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", rt.Auth.Logout)

	mux.Handle("GET /auth/user/{id}/profile/{$}", protected(rt.Profile.Get))
	mux.Handle("PUT /auth/user/{id}/profile/{$}", protected(rt.Profile.Update))

	mux.Handle("GET /expenditure/user/{$}", protected(rt.Expenditure.List))
	mux.Handle("POST /expenditure/user/{$}", protected(rt.Expenditure.Create))
	mux.Handle("GET /expenditure/user/{id}/{$}", protected(rt.Expenditure.Get))
	mux.Handle("PUT /expenditure/user/{id}/{$}", protected(rt.Expenditure.Update))
	mux.Handle("PATCH /expenditure/user/{id}/{$}", protected(rt.Expenditure.Patch))
	mux.Handle("DELETE /expenditure/user/{id}/{$}", protected(rt.Expenditure.Delete))

	mux.Handle("GET /income/user/{$}", protected(rt.Income.List))
	mux.Handle("POST /income/user/{$}", protected(rt.Income.Create))
	mux.Handle("GET /income/user/{id}/{$}", protected(rt.Income.Get))
	mux.Handle("PUT /income/user/{id}/{$}", protected(rt.Income.Update))
	mux.Handle("PATCH /income/user/{id}/{$}", protected(rt.Income.Patch))
	mux.Handle("DELETE /income/user/{id}/{$}", protected(rt.Income.Delete))
}
