package contextkeys

// Custom key type avoids collisions with other context values.
type contextKey string

// DBContextKey holds the per-request *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")

// CurrentUserKey holds the authenticated *models.User set by AuthMiddleware.
const CurrentUserKey = "currentUser"
