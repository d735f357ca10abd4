package container

import (
	"hollywool/seogen/internal/cache"
	"hollywool/seogen/internal/client"
	"hollywool/seogen/internal/config"
	"hollywool/seogen/internal/repository"
	"hollywool/seogen/internal/semcore"
	"hollywool/seogen/internal/service"
	"hollywool/seogen/internal/templates"

	"github.com/spf13/afero"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.WooCommerceClient
	Repository repository.DescriptionRepository

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	fs := afero.NewOsFs()

	core := semcore.Load(fs, cfg.Paths.SemanticCore)

	descriptionCache := cache.New(fs, cfg.Paths.CacheDir, cfg.Paths.ProfilesDir)
	templateStore := templates.New(fs, cfg.Paths.TemplateDirs)

	descriptionRepo := repository.NewDescriptionRepository(fs, cfg.Paths.OutputDir, cfg.Paths.PremadeDir)
	container.Repository = descriptionRepo

	wooClient := client.NewWooCommerceClient(cfg.WooCommerce)
	container.Client = wooClient

	service := service.NewService(
		fs,
		core,
		descriptionCache,
		templateStore,
		descriptionRepo,
		wooClient,
		cfg.Generator,
	)
	container.Service = service

	return container, nil
}
