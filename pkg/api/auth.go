package api

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// UserResponse представляет пользователя в ответах API
// Пароль (и его хеш) никогда не сериализуется
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair содержит пару выданных токенов
type TokenPair struct {
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

// LoginResponse представляет ответ на успешный вход
type LoginResponse struct {
	ID     string    `json:"id"`
	Email  string    `json:"email"`
	Tokens TokenPair `json:"tokens"`
}

// RefreshRequest представляет запрос на обмен refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse представляет ответ с новым access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // время жизни access token в секундах
}

// LogoutRequest представляет запрос на выход (отзыв refresh token)
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// ProfileUpdateRequest представляет полное обновление профиля
// Password опционален: непустое значение меняет пароль
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	Password  string  `json:"password,omitempty"`
}

// MessageResponse представляет ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
