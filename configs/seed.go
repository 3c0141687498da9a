package configs

import (
	"log"

	"github.com/azim-at/cafeBackend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoCafe provisions a demo cafe with its owning user and a small
// menu so a fresh database is immediately usable. Controlled by
// SEED_OWNER_EMAIL / SEED_OWNER_PASSWORD; skipped when unset.
func SeedDemoCafe() error {
	db := DB()
	email := getEnv("SEED_OWNER_EMAIL", "")
	pass := getEnv("SEED_OWNER_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding demo cafe: missing SEED_OWNER_EMAIL/SEED_OWNER_PASSWORD")
		return nil
	}

	var owner entity.User
	err := db.Where("email = ?", email).First(&owner).Error
	if err != nil {
		hash, herr := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if herr != nil {
			return herr
		}
		owner = entity.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Demo Owner",
			Role:         entity.RoleOwner,
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}
	}

	var cafe entity.Cafe
	if err := db.Where("slug = ?", "demo-cafe").First(&cafe).Error; err == nil {
		log.Println("demo cafe already seeded")
		return nil
	}
	cafe = entity.Cafe{
		Slug:        "demo-cafe",
		Name:        "Demo Cafe",
		Status:      entity.CafeStatusActive,
		OwnerUserID: owner.ID,
	}
	if err := db.Create(&cafe).Error; err != nil {
		return err
	}

	drinks := entity.MenuCategory{Name: "Drinks", SortOrder: 1, CafeID: cafe.ID}
	bakery := entity.MenuCategory{Name: "Bakery", SortOrder: 2, CafeID: cafe.ID}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}
	if err := db.Create(&bakery).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Espresso", Price: 300, IsActive: true, CafeID: cafe.ID, CategoryID: drinks.ID, Popular: true},
		{Name: "Latte", Price: 450, IsActive: true, CafeID: cafe.ID, CategoryID: drinks.ID},
		{Name: "Blueberry Muffin", Price: 325, IsActive: true, CafeID: cafe.ID, CategoryID: bakery.ID},
		{Name: "Croissant", Price: 350, IsActive: true, CafeID: cafe.ID, CategoryID: bakery.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("demo cafe seeded:", cafe.Slug)
	return nil
}
