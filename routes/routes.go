package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Lulu77Donc/reggie-take-out/controllers"
	"github.com/Lulu77Donc/reggie-take-out/events"
	"github.com/Lulu77Donc/reggie-take-out/middlewares"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// Handlers carries everything the route table needs. Hub and Gatherer are optional.
type Handlers struct {
	Auth middlewares.Authenticator

	Employee    *controllers.EmployeeController
	Category    *controllers.CategoryController
	Dish        *controllers.DishController
	Setmeal     *controllers.SetmealController
	Order       *controllers.OrderController
	Common      *controllers.CommonController
	User        *controllers.UserController
	AddressBook *controllers.AddressBookController
	Cart        *controllers.CartController

	Hub      *events.Hub
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	if h.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))
	}

	empAuth := middlewares.AuthMiddleware(h.Auth, utils.RoleEmployee)
	userAuth := middlewares.AuthMiddleware(h.Auth, utils.RoleUser)
	anyAuth := middlewares.AuthMiddleware(h.Auth)

	// Public
	r.POST("/employee/login", h.Employee.Login)
	r.POST("/user/sendMsg", h.User.SendMsg)
	r.POST("/user/login", h.User.Login)
	r.GET("/common/download", h.Common.Download)

	// Back office
	emp := r.Group("/employee", empAuth)
	{
		emp.POST("/logout", h.Employee.Logout)
		emp.POST("", h.Employee.Create)
		emp.GET("/page", h.Employee.Page)
		emp.PUT("", h.Employee.Update)
		emp.GET("/:id", h.Employee.Get)
	}

	cat := r.Group("/category", empAuth)
	{
		cat.POST("", h.Category.Save)
		cat.GET("/page", h.Category.Page)
		cat.DELETE("", h.Category.Delete)
		cat.PUT("", h.Category.Update)
	}
	r.GET("/category/list", anyAuth, h.Category.List)

	r.POST("/common/upload", empAuth, h.Common.Upload)

	dish := r.Group("/dish", empAuth)
	{
		dish.POST("", h.Dish.Save)
		dish.GET("/page", h.Dish.Page)
		dish.GET("/:id", h.Dish.Get)
		dish.PUT("", h.Dish.Update)
		dish.POST("/status/:status", h.Dish.Status)
		dish.DELETE("", h.Dish.Delete)
	}
	r.GET("/dish/list", anyAuth, h.Dish.List)

	setmeal := r.Group("/setmeal", empAuth)
	{
		setmeal.POST("", h.Setmeal.Save)
		setmeal.GET("/page", h.Setmeal.Page)
		setmeal.GET("/:id", h.Setmeal.Get)
		setmeal.PUT("", h.Setmeal.Update)
		setmeal.POST("/status/:status", h.Setmeal.Status)
		setmeal.DELETE("", h.Setmeal.Delete)
	}
	r.GET("/setmeal/list", anyAuth, h.Setmeal.List)

	// Orders are shared: customers submit and track, staff move them along.
	r.GET("/order/page", empAuth, h.Order.Page)
	r.PUT("/order", empAuth, h.Order.UpdateStatus)
	r.POST("/order/submit", userAuth, h.Order.Submit)
	r.GET("/order/userPage", userAuth, h.Order.UserPage)
	r.POST("/order/again", userAuth, h.Order.Again)
	r.PUT("/order/:id/cancel", userAuth, h.Order.Cancel)
	r.GET("/order/:id", anyAuth, h.Order.Get)
	r.GET("/order/:id/qrcode", anyAuth, h.Order.QRCode)

	if h.Hub != nil {
		r.GET("/ws/orders", empAuth, h.Hub.HandleWebSocket)
	}

	// Customer
	user := r.Group("/user", userAuth)
	{
		user.POST("/loginout", h.User.Logout)
	}

	addr := r.Group("/addressBook", userAuth)
	{
		addr.POST("", h.AddressBook.Save)
		addr.PUT("", h.AddressBook.Update)
		addr.PUT("/default", h.AddressBook.SetDefault)
		addr.GET("/default", h.AddressBook.GetDefault)
		addr.GET("/list", h.AddressBook.List)
		addr.GET("/:id", h.AddressBook.Get)
		addr.DELETE("", h.AddressBook.Delete)
	}

	cart := r.Group("/shoppingCart", userAuth)
	{
		cart.POST("/add", h.Cart.Add)
		cart.POST("/sub", h.Cart.Sub)
		cart.GET("/list", h.Cart.List)
		cart.DELETE("/clean", h.Cart.Clean)
	}
}
