package contextkeys

// Custom type so the key cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (the pool or,
// in tests, an open transaction) is stored in the request context.
const DBContextKey = contextKey("db")
