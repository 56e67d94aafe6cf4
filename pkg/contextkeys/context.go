package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (connection pool or an open
	// transaction) through gin.Context and request contexts.
	DBContextKey ContextKey = "db"
)
