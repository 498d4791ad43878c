package httpserver

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"zepto-clone/internal/coordinator"
	"zepto-clone/internal/domain"
)

// cartMutation is the body of every cart write. The product travels whole
// because the UI layer already holds it from the catalog state; the core
// never looks products up by id on mutation.
type cartMutation struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func getCartHandler(cart *coordinator.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

func addToCartHandler(cart *coordinator.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindCartMutation(c)
		if !ok {
			return
		}
		cart.Add(in.Product)
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

func removeFromCartHandler(cart *coordinator.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindCartMutation(c)
		if !ok {
			return
		}
		cart.Remove(in.Product)
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

func setQuantityHandler(cart *coordinator.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindCartMutation(c)
		if !ok {
			return
		}
		cart.SetQuantity(in.Product, in.Quantity)
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

func clearCartHandler(cart *coordinator.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

// watchCartHandler streams cart snapshots as server-sent events: the current
// state first, then one event per change, until the client goes away.
func watchCartHandler(cart *coordinator.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		ch, stop := cart.Subscribe()
		defer stop()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Stream(func(w io.Writer) bool {
			select {
			case state, ok := <-ch:
				if !ok {
					return false
				}
				c.SSEvent("cart", state)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}

func bindCartMutation(c *gin.Context) (cartMutation, bool) {
	var in cartMutation
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return in, false
	}
	if in.Product.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id required"})
		return in, false
	}
	return in, true
}
