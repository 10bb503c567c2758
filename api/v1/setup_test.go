package v1

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/resenas-api/database"
	"github.com/resenas-api/models"
	"github.com/resenas-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.DB = dbConn
	resetTables(t)
}

func resetTables(t *testing.T) {
	for _, table := range []string{"reviews", "users", "products", "categories"} {
		if err := database.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset %s table: %v", table, err)
		}
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

type fixtures struct {
	Santi, Emmanuel        models.User
	Alma, Orca, Casco      models.Product
	Bicicletas, Accesorios models.Category
}

func strptr(s string) *string {
	return &s
}

func seedTestUser(t *testing.T, username, email, password string) models.User {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := models.User{Username: username, Email: email, HashedPassword: hashed, Role: models.RoleUser, IsActive: true}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return u
}

// seedFixtures mirrors the development seed script: 2 categories, 3
// products, 2 users and 3 reviews.
func seedFixtures(t *testing.T) fixtures {
	var f fixtures

	f.Bicicletas = models.Category{Name: "Bicicletas"}
	f.Accesorios = models.Category{Name: "Accesorios"}
	for _, c := range []*models.Category{&f.Bicicletas, &f.Accesorios} {
		if err := database.DB.Create(c).Error; err != nil {
			t.Fatalf("failed to seed category: %v", err)
		}
	}

	f.Alma = models.Product{Name: "Orbea Alma", Description: strptr("Bicicleta de montaña ligera"), CategoryID: f.Bicicletas.ID}
	f.Orca = models.Product{Name: "Orbea Orca", Description: strptr("Bicicleta de carretera de alto rendimiento"), CategoryID: f.Bicicletas.ID}
	f.Casco = models.Product{Name: "Casco Pro", Description: strptr("Casco ligero de carbono"), CategoryID: f.Accesorios.ID}
	for _, p := range []*models.Product{&f.Alma, &f.Orca, &f.Casco} {
		if err := database.DB.Create(p).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	f.Santi = seedTestUser(t, "santi", "santi@example.com", "santi123")
	f.Emmanuel = seedTestUser(t, "emmanuel", "emmanuel@example.com", "david123")

	reviews := []models.Review{
		{Rating: 5, Comment: strptr("Excelente bici"), UserID: f.Santi.ID, ProductID: f.Alma.ID},
		{Rating: 4, Comment: strptr("Muy buena, pero cara"), UserID: f.Santi.ID, ProductID: f.Orca.ID},
		{Rating: 3, Comment: strptr("Buen casco, aunque algo caro"), UserID: f.Emmanuel.ID, ProductID: f.Casco.ID},
	}
	for i := range reviews {
		if err := database.DB.Create(&reviews[i]).Error; err != nil {
			t.Fatalf("failed to seed review: %v", err)
		}
	}

	return f
}
