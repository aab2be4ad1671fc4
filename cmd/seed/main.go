package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/quickbasket/quickbasket-api/config"
	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/infrastructure/database/mongodb"
	"github.com/quickbasket/quickbasket-api/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var seedCategories = []domain.Category{
	{Name: "Vegetables & Fruits", Image: "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?auto=format&fit=crop&w=800&q=80"},
	{Name: "Dairy & Breakfast", Image: "https://images.unsplash.com/photo-1550583724-b2692b85b150?auto=format&fit=crop&w=800&q=80"},
	{Name: "Munchies", Image: "https://images.unsplash.com/photo-1566478989037-eec170784d0b?auto=format&fit=crop&w=800&q=80"},
	{Name: "Cold Drinks & Juices", Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?auto=format&fit=crop&w=800&q=80"},
	{Name: "Instant & Frozen Food", Image: "https://images.unsplash.com/photo-1630384060421-a4323ce5663d?auto=format&fit=crop&w=800&q=80"},
	{Name: "Tea & Coffee", Image: "https://images.unsplash.com/photo-1563911302283-d2bc129e7c1f?auto=format&fit=crop&w=800&q=80"},
	{Name: "Bakery & Biscuits", Image: "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=800&q=80"},
	{Name: "Atta, Rice & Dal", Image: "https://images.unsplash.com/photo-1586201375761-83865001e31c?auto=format&fit=crop&w=800&q=80"},
}

type seedProduct struct {
	name         string
	brand        string
	category     string
	image        string
	description  string
	price        float64
	countInStock int64
}

var seedProducts = []seedProduct{
	{"Fresh Bananas", "Farm Direct", "Vegetables & Fruits", "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?auto=format&fit=crop&w=800&q=80", "A dozen ripe bananas", 2.49, 120},
	{"Red Apples 1kg", "Farm Direct", "Vegetables & Fruits", "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?auto=format&fit=crop&w=800&q=80", "Crisp red apples", 3.99, 80},
	{"Whole Milk 1L", "DairyPure", "Dairy & Breakfast", "https://images.unsplash.com/photo-1563636619-e9143da7973b?auto=format&fit=crop&w=800&q=80", "Pasteurized whole milk", 1.29, 200},
	{"Salted Potato Chips", "Crunchy Co", "Munchies", "https://images.unsplash.com/photo-1566478989037-eec170784d0b?auto=format&fit=crop&w=800&q=80", "Classic salted chips, 150g", 1.99, 150},
	{"Orange Juice 1L", "Juicy", "Cold Drinks & Juices", "https://images.unsplash.com/photo-1600271886742-f049cd451bba?auto=format&fit=crop&w=800&q=80", "No added sugar", 2.79, 60},
	{"Frozen Peas 500g", "FreshFroz", "Instant & Frozen Food", "https://images.unsplash.com/photo-1630384060421-a4323ce5663d?auto=format&fit=crop&w=800&q=80", "Garden peas, flash frozen", 1.59, 90},
	{"Assam Black Tea 250g", "Brew Masters", "Tea & Coffee", "https://images.unsplash.com/photo-1563911302283-d2bc129e7c1f?auto=format&fit=crop&w=800&q=80", "Strong leaf tea", 4.49, 70},
	{"Butter Biscuits", "Bakehouse", "Bakery & Biscuits", "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=800&q=80", "Short, crumbly, buttery", 2.29, 110},
	{"Whole Wheat Atta 5kg", "Golden Harvest", "Atta, Rice & Dal", "https://images.unsplash.com/photo-1586201375761-83865001e31c?auto=format&fit=crop&w=800&q=80", "Stone-ground whole wheat flour", 6.99, 45},
}

func main() {
	destroy := flag.Bool("d", false, "destroy all data instead of importing")
	flag.Parse()

	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort), conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	ctx := context.Background()

	if err := wipe(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear collections")
	}

	if *destroy {
		log.Info().Msg("Data destroyed")
		return
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	adminID, err := importData(ctx, db, conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to import data")
	}

	// A ready-to-use admin token saves a round of manual token minting when
	// poking the API locally.
	token, err := utils.CreateJWTToken(adminID.Hex(), "Admin", true, conf.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin token")
	}

	log.Info().Str("admin_token", token).Msg("Data imported")
}

func wipe(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{"orders", "products", "categories", "users", "config"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return err
		}
	}

	return nil
}

func importData(ctx context.Context, db *mongo.Database, conf *config.Config) (adminID primitive.ObjectID, err error) {
	now := time.Now().Unix()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	customerHash, err := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	users := []interface{}{
		domain.User{Name: "Admin", Email: "admin@quickbasket.test", HashedPassword: string(adminHash), IsAdmin: true, CreatedAt: now, UpdatedAt: now},
		domain.User{Name: "Jamie Customer", Email: "jamie@quickbasket.test", HashedPassword: string(customerHash), CreatedAt: now, UpdatedAt: now},
	}

	userResult, err := db.Collection("users").InsertMany(ctx, users)
	if err != nil {
		return
	}

	adminID = userResult.InsertedIDs[0].(primitive.ObjectID)

	categoryIDs := make(map[string]primitive.ObjectID, len(seedCategories))
	categories := make([]interface{}, 0, len(seedCategories))
	for _, category := range seedCategories {
		category.CreatedAt = now
		category.UpdatedAt = now
		categories = append(categories, category)
	}

	categoryResult, err := db.Collection("categories").InsertMany(ctx, categories)
	if err != nil {
		return
	}

	for i, insertedID := range categoryResult.InsertedIDs {
		categoryIDs[seedCategories[i].Name] = insertedID.(primitive.ObjectID)
	}

	products := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		products = append(products, domain.Product{
			UserID:       adminID,
			CategoryID:   categoryIDs[p.category],
			Name:         p.name,
			Brand:        p.brand,
			Image:        p.image,
			Description:  p.description,
			Price:        p.price,
			CountInStock: p.countInStock,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	_, err = db.Collection("products").InsertMany(ctx, products)
	return
}
