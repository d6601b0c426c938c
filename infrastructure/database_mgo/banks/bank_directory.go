package banks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"twqr-system/domain/entities"
)

// RepoImpl reads the bank dataset from the "banks" collection. It is a
// dataset source only: records are loaded once at process start and the
// in-memory directory index answers every query after that.
type RepoImpl struct {
	collection *mongo.Collection
}

// NewBankDatasetRepository -
func NewBankDatasetRepository(db *mongo.Client, dbName string) *RepoImpl {
	return &RepoImpl{
		collection: db.Database(dbName).Collection("banks"),
	}
}

// LoadAll returns every record sorted by bank code.
func (r RepoImpl) LoadAll(ctx context.Context) ([]entities.BankRecord, error) {
	result := []entities.BankRecord{}
	cur, err := r.collection.Find(ctx,
		bson.M{},
		&options.FindOptions{
			Sort: bson.M{"no": 1},
		})

	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var record entities.BankRecord

		err = cur.Decode(&record)
		if err == nil {
			result = append(result, record)
		}
	}

	return result, nil
}
