package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB 每个测试使用独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Tag{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.ShoppingCart{},
		&model.ShortLink{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

// fakeImageStore 测试用图片存储，记录保存过的对象
type fakeImageStore struct {
	saved []string
}

func (f *fakeImageStore) Save(_ context.Context, bucket, objectName string, _ []byte, _ string) (string, error) {
	f.saved = append(f.saved, bucket+"/"+objectName)
	return "http://images.test/" + bucket + "/" + objectName, nil
}

// pngImageData 返回合法的 base64 图片数据
func pngImageData() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))
}

func seedUser(t *testing.T, db *gorm.DB, email, username string) *model.User {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &model.User{
		Email:     email,
		UserName:  username,
		FirstName: "测试",
		LastName:  "用户",
		Password:  hashed,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedTag(t *testing.T, db *gorm.DB, name, slug string) *model.Tag {
	t.Helper()

	tag := &model.Tag{Name: name, Slug: slug}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}
	return tag
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *model.Ingredient {
	t.Helper()

	ingredient := &model.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to seed ingredient: %v", err)
	}
	return ingredient
}

func newTestRecipeRepo(db *gorm.DB) *repository.RecipeRepository {
	return repository.NewRecipeRepository(db)
}

func newTestRelationRepo(db *gorm.DB) *repository.RelationRepository {
	return repository.NewRelationRepository(db)
}

// newTestRecipeService 构建依赖内存库的食谱服务
func newTestRecipeService(db *gorm.DB, images ImageStore, publish RecipeEventPublisher) *RecipeService {
	return NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewTagRepository(db),
		repository.NewIngredientRepository(db),
		repository.NewRelationRepository(db),
		repository.NewSubscriptionRepository(db),
		images,
		publish,
	)
}
