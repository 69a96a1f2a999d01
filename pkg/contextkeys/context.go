package contextkeys

// Custom type avoids collisions with other packages' context keys.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or
// test transaction) is stored in the request context.
const DBContextKey = contextKey("db")

// AccountContextKey is the key under which the gate middleware stores the
// resolved account for downstream handlers.
const AccountContextKey = contextKey("account")
