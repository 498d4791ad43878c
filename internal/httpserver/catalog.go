package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zepto-clone/internal/coordinator"
	"zepto-clone/internal/domain"
)

func homeStateHandler(home *coordinator.Home) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, home.State())
	}
}

func refreshHomeHandler(home *coordinator.Home) gin.HandlerFunc {
	return func(c *gin.Context) {
		home.Load(c.Request.Context())
		c.JSON(http.StatusOK, home.State())
	}
}

func selectCategoryHandler(home *coordinator.Home) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Category
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		home.SelectCategory(c.Request.Context(), in)
		c.JSON(http.StatusOK, home.State())
	}
}

// selectCategoryByKeyHandler selects by id or name from the path, for
// clients that do not hold the full category from the home state.
func selectCategoryByKeyHandler(home *coordinator.Home) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := home.SelectCategoryByKey(c.Request.Context(), c.Param("idOrName"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": coordinator.MsgCategoryNotFound})
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, home.State())
		}
	}
}

// categoryHandler runs the category screen's load for the key in the path
// and reports the resulting state. A lookup miss maps to 404, a transport
// failure to 502, both carrying the coordinator state as body.
func categoryHandler(category *coordinator.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		category.Load(c.Request.Context(), c.Param("idOrName"))

		state := category.State()
		switch {
		case state.Error == coordinator.MsgCategoryNotFound:
			c.JSON(http.StatusNotFound, state)
		case state.Error != "":
			c.JSON(http.StatusBadGateway, state)
		default:
			c.JSON(http.StatusOK, state)
		}
	}
}
