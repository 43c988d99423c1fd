package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/config"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Tenancy and access control
		&entity.Shop{},
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Ledger book
		&entity.Ledger{},
		&entity.Voucher{},
		&entity.VoucherItem{},
		&entity.Settlement{},

		// Shop operations
		&entity.Expense{},
		&entity.Karigar{},
		&entity.KarigarEntry{},
		&entity.StockItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default roles, permissions and
// the platform super admin.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := []entity.Permission{
		{Name: "view-dashboard"},
		{Name: "view-reports"},
		{Name: "manage-ledgers"},
		{Name: "manage-vouchers"},
		{Name: "manage-expenses"},
		{Name: "manage-karigars"},
		{Name: "manage-stock"},
		{Name: "manage-users"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// Create super-admin role with all permissions
	var superAdminRole entity.Role
	if err := db.Where("name = ?", "super-admin").First(&superAdminRole).Error; err != nil {
		superAdminRole = entity.Role{
			Name:        "super-admin",
			Permissions: allPermissions,
		}
		if err := db.Create(&superAdminRole).Error; err != nil {
			log.Printf("Warning: failed to create super-admin role: %v", err)
		}
	}

	// Create admin role with all permissions (shop owner)
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Create staff role: staff can write bills and look up accounts but
	// cannot touch reports, expenses or other users
	staffPermissions := []string{
		"view-dashboard",
		"manage-ledgers",
		"manage-vouchers",
		"manage-stock",
	}
	var staffPerms []entity.Permission
	for _, name := range staffPermissions {
		for _, p := range allPermissions {
			if p.Name == name {
				staffPerms = append(staffPerms, p)
				break
			}
		}
	}

	var staffRole entity.Role
	if err := db.Where("name = ?", "staff").First(&staffRole).Error; err != nil {
		staffRole = entity.Role{
			Name:        "staff",
			Permissions: staffPerms,
		}
		if err := db.Create(&staffRole).Error; err != nil {
			log.Printf("Warning: failed to create staff role: %v", err)
		}
	}

	// Create the platform super admin if configured via environment variables.
	// Every user belongs to a shop, so the super admin gets a platform shop of
	// its own.
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var saRole entity.Role
				if err := db.Where("name = ?", "super-admin").First(&saRole).Error; err == nil {
					if adminName == "" {
						adminName = "Super Admin"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}

					// The shop references its owner and the owner references
					// the shop, so the owner's ID is fixed up front
					adminID := uuid.New()
					platformShop := entity.Shop{
						Name:     "Platform",
						Slug:     "platform",
						OwnerID:  adminID,
						Settings: entity.DefaultShopSettings(),
					}
					if err := db.Where("slug = ?", "platform").First(&platformShop).Error; err != nil {
						if err := db.Create(&platformShop).Error; err != nil {
							log.Printf("Warning: failed to create platform shop: %v", err)
							return nil
						}
					}

					adminUser := entity.User{
						ID:        adminID,
						ShopID:    platformShop.ID,
						FirstName: firstName,
						LastName:  lastName,
						Username:  adminUsername,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{saRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create super admin user: %v", err)
					} else {
						log.Printf("Super admin user created: %s", adminUsername)
					}
				}
			}
		} else {
			log.Printf("Super admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
