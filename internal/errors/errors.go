// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// NotFoundError is returned when a referenced or updated row does not exist.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewInfluencerNotFound(id int) error { return NewNotFound("Influencer", id) }
func NewSponsorNotFound(id int) error    { return NewNotFound("Sponsor", id) }
func NewProductNotFound(id int) error    { return NewNotFound("Product", id) }
func NewCampaignNotFound(id int) error   { return NewNotFound("Campaign", id) }

func NewSocialMediaAccountNotFound(id int) error {
	return NewNotFound("Social media account", id)
}

func NewPerformanceIndicatorsNotFound(id int) error {
	return NewNotFound("Performance indicators", id)
}

// OwnershipError reports a child row that belongs to a different parent than the one supplied.
type OwnershipError struct {
	Child    string
	ChildID  int
	Parent   string
	ParentID int
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("%s %d does not belong to %s %d", e.Child, e.ChildID, e.Parent, e.ParentID)
}

func NewProductNotOwned(productID, sponsorID int) error {
	return &OwnershipError{Child: "Product", ChildID: productID, Parent: "sponsor", ParentID: sponsorID}
}

// ValidationError wraps input that was rejected before reaching a service.
type ValidationError struct {
	Field string
	Rule  string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("field [%s] failed validation rule [%s]", e.Field, e.Rule)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsOwnership(err error) bool {
	var oe *OwnershipError
	return errors.As(err, &oe)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

const uniqueViolation = pq.ErrorCode("23505")

// IsUniqueViolation reports whether err is a postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
