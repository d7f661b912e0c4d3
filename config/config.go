package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ntgiang/attt-survey-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB khởi tạo kết nối PostgreSQL, migrate bảng và seed bộ câu hỏi
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Ho_Chi_Minh",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Bộ câu hỏi là dữ liệu tham chiếu cố định, chỉ seed khi bảng trống
	if err := SeedCauHoi(db); err != nil {
		log.Fatalf("failed to seed question catalog: %v", err)
	}

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")
}

// Migrate tách riêng để test dùng lại trên SQLite
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CauHoi{},
		&models.LuaChon{},
		&models.NguoiKhaoSat{},
		&models.PhieuTraLoi{},
		&models.CauTraLoi{},
	)
}
