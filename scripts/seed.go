package main

import (
	"log"

	"github.com/resenas-api/config"
	"github.com/resenas-api/database"
	"github.com/resenas-api/models"
	"github.com/resenas-api/utils"
	"gorm.io/gorm"
)

// Development fixture loader. Destructive: wipes every table before
// inserting, so never point it at production data.
func main() {
	log.Println("Seeding development fixtures...")

	config.LoadEnv()
	database.Initialize()

	db := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true})

	// Clear tables, reviews first so no row is left dangling
	for _, model := range []interface{}{
		&models.Review{},
		&models.User{},
		&models.Product{},
		&models.Category{},
	} {
		if err := db.Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	// Categories
	bicicletas := models.Category{Name: "Bicicletas"}
	accesorios := models.Category{Name: "Accesorios"}
	if err := database.DB.Create(&bicicletas).Error; err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	if err := database.DB.Create(&accesorios).Error; err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	// Products
	alma := models.Product{Name: "Orbea Alma", Description: ptr("Bicicleta de montaña ligera"), CategoryID: bicicletas.ID}
	orca := models.Product{Name: "Orbea Orca", Description: ptr("Bicicleta de carretera de alto rendimiento"), CategoryID: bicicletas.ID}
	casco := models.Product{Name: "Casco Pro", Description: ptr("Casco ligero de carbono"), CategoryID: accesorios.ID}
	for _, product := range []*models.Product{&alma, &orca, &casco} {
		if err := database.DB.Create(product).Error; err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
	}

	// Users
	santi := seedUser("santi", "santi@example.com", "santi123")
	emmanuel := seedUser("emmanuel", "emmanuel@example.com", "david123")

	// Reviews
	reviews := []models.Review{
		{Rating: 5, Comment: ptr("Excelente bici"), UserID: santi.ID, ProductID: alma.ID},
		{Rating: 4, Comment: ptr("Muy buena, pero cara"), UserID: santi.ID, ProductID: orca.ID},
		{Rating: 3, Comment: ptr("Buen casco, aunque algo caro"), UserID: emmanuel.ID, ProductID: casco.ID},
	}
	for i := range reviews {
		if err := database.DB.Create(&reviews[i]).Error; err != nil {
			log.Fatalf("Failed to seed reviews: %v", err)
		}
	}

	log.Println("✅ Seed completed: 2 categories, 3 products, 2 users, 3 reviews")
}

func seedUser(username, email, password string) models.User {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", username, err)
	}
	user := models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleUser,
		IsActive:       true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatalf("Failed to seed user %s: %v", username, err)
	}
	return user
}

func ptr(s string) *string {
	return &s
}
