package tree

import (
	"errors"
	"fmt"

	"github.com/benz9527/xalgo/lib/infra"
)

var (
	ErrEmptyTree             = errors.New("[rbtree] empty")
	ErrKeyNotFound           = errors.New("[rbtree] key not found")
	ErrPreconditionViolation = errors.New("[rbtree] precondition violation")
	ErrRootViolation         = errors.New("[rbtree] root violation")
	ErrRedViolation          = errors.New("[rbtree] red violation")
	ErrBlackViolation        = errors.New("[rbtree] black violation")
	ErrOrderViolation        = errors.New("[rbtree] order violation")
	ErrLinkViolation         = errors.New("[rbtree] parent link violation")
	ErrCountViolation        = errors.New("[rbtree] count violation")
)

// PreconditionError is the panic value of a broken operation contract,
// e.g. deleting a node twice or rotating toward a sentinel child.
type PreconditionError struct {
	Op     string
	Reason string
	At     infra.Frame
}

func (err *PreconditionError) Error() string {
	return fmt.Sprintf("[rbtree] %s: %s (at %v)", err.Op, err.Reason, err.At)
}

func (err *PreconditionError) Unwrap() error {
	return ErrPreconditionViolation
}
