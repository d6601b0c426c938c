package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"twqr-system/domain/entities"
	"twqr-system/domain/repositories"
	"twqr-system/infrastructure/assetstore"
	"twqr-system/infrastructure/bankdata"
	"twqr-system/infrastructure/database_mgo"
	"twqr-system/infrastructure/database_mgo/banks"
	"twqr-system/infrastructure/qrgen"
	"twqr-system/infrastructure/service/logo_service"
	"twqr-system/utils/configs"
	"twqr-system/utils/gpooling"
)

// TransferApplication owns the wired core: directory index, payload encoder
// gate, composite renderer and the render generation bookkeeping.
type TransferApplication struct {
	Config          *configs.Config
	Logger          *zap.Logger
	IPool           gpooling.IPool
	BankRepository  repositories.BankRepository
	AssetRepository repositories.IAssetCache
	Renderer        *CompositeRenderer

	generation uint64
	mu         sync.RWMutex
	latest     string
}

func NewTransferApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) (*TransferApplication, error) {
	records, err := loadDataset(config)
	if err != nil {
		return nil, err
	}

	directory, err := bankdata.NewDirectory(records)
	if err != nil {
		return nil, err
	}

	var store repositories.IKVStore
	if config.Logo.CacheDir != "" {
		store, err = assetstore.NewFileStore(config.Logo.CacheDir)
		if err != nil {
			return nil, err
		}
	} else {
		store = assetstore.NewMemoryStore()
	}

	assets := logo_service.NewRepoImpl(config.Logo.URL, store, logger)

	renderer, err := NewCompositeRenderer(qrgen.NewGenerator(), assets, config.Logo.CacheKey, logger)
	if err != nil {
		return nil, err
	}
	renderer.MatrixWidth = config.Render.Width

	return &TransferApplication{
		Config:          config,
		Logger:          logger,
		IPool:           pool,
		BankRepository:  directory,
		AssetRepository: assets,
		Renderer:        renderer,
	}, nil
}

// loadDataset picks the directory source: mongo when configured, then a
// dataset file override, otherwise the embedded dataset. Whatever the
// source, records are loaded exactly once here.
func loadDataset(config *configs.Config) ([]entities.BankRecord, error) {
	if config.Directory.MongoURI != "" {
		db, err := database_mgo.NewMongoDBconnection(config.Directory.MongoURI)
		if err != nil {
			return nil, err
		}
		return banks.NewBankDatasetRepository(db, config.Directory.DBName).LoadAll(context.TODO())
	}
	if config.Directory.DatasetPath != "" {
		return bankdata.LoadFile(config.Directory.DatasetPath)
	}
	return bankdata.LoadEmbedded()
}
