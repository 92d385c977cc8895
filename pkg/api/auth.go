package api

// LoginRequest представляет запрос на аутентификацию работника
type LoginRequest struct {
	Username string `json:"username"` // логин работника
	Password string `json:"password"` // пароль (передается только по TLS)
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	UserID      string `json:"user_id"`      // UUID работника
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
