// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package firestoredb

import (
	"errors"
	"fmt"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
)

// wrapTxErr wraps transaction failures while passing sentinels through
// unchanged so callers can match them without digging through messages.
func wrapTxErr(action string, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, errs.ErrAlreadyExists):
		return err
	default:
		return fmt.Errorf("firestoredb: %s: %w", action, err)
	}
}
