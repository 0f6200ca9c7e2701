package service

import (
	"errors"
	"log"

	"salon-inventory/internal/model"
	"salon-inventory/internal/repository"

	"gorm.io/gorm"
)

// OwnerResolver supplies the single fixed identity attached to every
// transaction. It must never fail: when storage is unreachable it returns an
// in-memory fallback so writes can still be attempted.
type OwnerResolver interface {
	Resolve() *model.User
}

type ownerResolver struct {
	userRepo repository.UserRepository
}

func NewOwnerResolver(userRepo repository.UserRepository) OwnerResolver {
	return &ownerResolver{userRepo: userRepo}
}

// Resolve returns the owner row, materializing it lazily on first access.
func (r *ownerResolver) Resolve() *model.User {
	owner, err := r.userRepo.FindByID(model.OwnerID)
	if err == nil {
		_ = r.userRepo.TouchLastSignedIn(owner.ID)
		return owner
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("identity: storage unavailable, using fallback owner:", err)
		return model.FallbackOwner()
	}

	owner = &model.User{
		Name: model.OwnerName,
		Role: model.RoleOwner,
	}
	owner.ID = model.OwnerID
	owner.CreatedBy = "system"
	owner.UpdatedBy = "system"
	if createErr := r.userRepo.Create(owner); createErr != nil {
		log.Println("identity: failed to create owner row:", createErr)
		return model.FallbackOwner()
	}

	return owner
}
