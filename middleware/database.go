package middleware

import (
	"github.com/ariebrainware/chiro-directory/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbContextKey = "db"

// DatabaseMiddleware makes db available to handlers of every request.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbContextKey, db)
		c.Next()
	}
}

// GetDB returns the request's database handle, or nil if none was injected.
func GetDB(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbContextKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// GetChiropractorRepository wraps the request's database handle, or returns nil.
func GetChiropractorRepository(c *gin.Context) *model.ChiropractorRepository {
	db := GetDB(c)
	if db == nil {
		return nil
	}
	return model.NewChiropractorRepository(db)
}
