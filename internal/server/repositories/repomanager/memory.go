package repomanager

import (
	"context"

	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/repositories/content"
	"github.com/fundunity/cmsdash/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory; data is
// lost on restart. Used when no DSN is configured and in tests.
type InMemoryRepositoryManager struct {
	users        *users.MemoryRepository
	aboutUs      *content.MemoryRepository[models.AboutUs]
	sliders      *content.MemoryRepository[models.SliderImage]
	programs     *content.MemoryRepository[models.Program]
	partners     *content.MemoryRepository[models.Partner]
	transactions *content.MemoryRepository[models.Transaction]
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:        users.NewMemoryRepository(),
		aboutUs:      content.NewMemoryRepository(content.AboutUsSchema),
		sliders:      content.NewMemoryRepository(content.SliderSchema),
		programs:     content.NewMemoryRepository(content.ProgramSchema),
		partners:     content.NewMemoryRepository(content.PartnerSchema),
		transactions: content.NewMemoryRepository(content.TransactionSchema),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Close() error                            { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) AboutUs() content.Repository[models.AboutUs] {
	return m.aboutUs
}

func (m *InMemoryRepositoryManager) Sliders() content.Repository[models.SliderImage] {
	return m.sliders
}

func (m *InMemoryRepositoryManager) Programs() content.Repository[models.Program] {
	return m.programs
}

func (m *InMemoryRepositoryManager) Partners() content.Repository[models.Partner] {
	return m.partners
}

func (m *InMemoryRepositoryManager) Transactions() content.Repository[models.Transaction] {
	return m.transactions
}
