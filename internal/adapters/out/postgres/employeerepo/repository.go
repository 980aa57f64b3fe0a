package employeerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/employee"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRoster implements EmployeeRoster using GORM.
// All operations are reads; the roster table is maintained externally.
type GormEmployeeRoster struct {
	db *gorm.DB
}

// NewGormEmployeeRoster creates a new GORM employee roster.
func NewGormEmployeeRoster(db *gorm.DB) *GormEmployeeRoster {
	return &GormEmployeeRoster{db: db}
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRoster) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full roster sorted by name.
func (r *GormEmployeeRoster) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	var dtos []EmployeeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	employees := make([]*employee.Employee, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}
