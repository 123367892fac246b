package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// productDocument stores the price as Decimal128 so no precision is lost.
type productDocument struct {
	ID          string               `bson:"_id"`
	OwnerID     string               `bson:"owner_id"`
	Name        string               `bson:"name"`
	Price       primitive.Decimal128 `bson:"price"`
	Quantity    int                  `bson:"quantity"`
	Description string               `bson:"description,omitempty"`
	ExpiresAt   *time.Time           `bson:"expires_at,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func toProductDocument(p *domain.Product) (productDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return productDocument{}, fmt.Errorf("encode price %s: %w", p.Price, err)
	}
	return productDocument{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Price:       price,
		Quantity:    p.Quantity,
		Description: p.Description,
		ExpiresAt:   p.ExpiresAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d productDocument) toDomain() (*domain.Product, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return nil, fmt.Errorf("decode price of product %s: %w", d.ID, err)
	}
	p := &domain.Product{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Price:       price,
		Quantity:    d.Quantity,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.ExpiresAt != nil {
		exp := d.ExpiresAt.UTC()
		p.ExpiresAt = &exp
	}
	return p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) GetByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
}

func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	if product.OwnerID == "" {
		return domain.ErrOwnerRequired
	}
	doc, err := toProductDocument(product)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if product.OwnerID == "" {
		return domain.ErrOwnerRequired
	}
	doc, err := toProductDocument(product)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, doc)
	if err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Remove(ctx context.Context, id string) error {
	return r.delete(ctx, bson.M{"_id": id})
}

func (r *ProductRepository) RemoveByIDAndOwner(ctx context.Context, id, ownerID string) error {
	return r.delete(ctx, bson.M{"_id": id, "owner_id": ownerID})
}

func (r *ProductRepository) delete(ctx context.Context, filter bson.M) error {
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]*domain.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	var doc productDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain()
}
