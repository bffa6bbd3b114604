package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"elastica/internal/handlers"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

func main() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// User auth routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", handlers.SignUp)
		r.Post("/login", handlers.Login)
		r.Post("/google", handlers.GoogleLogin)
	})

	// Admin auth routes
	r.Route("/admins", func(r chi.Router) {
		r.Post("/create", handlers.CreateAdmin)
		r.Post("/login", handlers.AdminLogin)
		r.Post("/verify", handlers.VerifyAdminToken)
	})

	r.Route("/api", func(r chi.Router) {
		// Public catalog
		r.Post("/get_productsCt", handlers.GetProductsCt)
		r.Get("/products/{id}", handlers.GetProductByID)
		r.Get("/categories", handlers.GetCategories)
		r.Get("/categories/{slug}", handlers.GetCategoryBySlug)
		r.Get("/reviews/{productId}", handlers.GetReviews)
		r.Get("/questions", handlers.GetQuestions)

		// Logged-in users
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthenticationMiddleware)

			r.Post("/reviews/{productId}", handlers.PostReview)
			r.Post("/questions", handlers.PostQuestion)

			r.Get("/users/profile", handlers.GetProfile)
			r.Put("/users/profile", handlers.UpdateProfile)

			r.Get("/users/cart", handlers.GetCart)
			r.Post("/users/cart", handlers.AddToCart)
			r.Put("/users/cart", handlers.UpdateCartItem)
			r.Delete("/users/cart", handlers.RemoveFromCart)

			r.Get("/users/wishlist", handlers.GetWishlist)
			r.Post("/users/wishlist", handlers.AddToWishlist)
			r.Delete("/users/wishlist", handlers.RemoveFromWishlist)
		})

		// Admin console
		r.Group(func(r chi.Router) {
			r.Use(handlers.AdminAuthenticationMiddleware)

			r.Post("/answer/{questionId}", handlers.PostAnswer)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/add_product", handlers.AddProduct)
				r.Put("/update_product/{id}", handlers.EditProduct)
				r.Delete("/delete_product/{id}", handlers.DeleteProduct)

				r.Post("/addcategory", handlers.AddCategory)
				r.Put("/update_category/{id}", handlers.EditCategory)
				r.Delete("/delete_category/{id}", handlers.DeleteCategory)

				r.Post("/upload_image", handlers.UploadImage)
				r.Get("/stats", handlers.GetStats)
			})
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	fmt.Println("Server is running on http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
