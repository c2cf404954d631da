package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrItemEmpty           = errors.New("the expense item must not be empty")
	ErrAmountNotPositive   = errors.New("amounts must be larger than zero")
	ErrCategoryInvalid     = errors.New("the specified category does not exist")
	ErrDateNotSet          = errors.New("the expense date must be set")
	ErrIncomeSourceInvalid = errors.New("the specified income source does not exist")
	ErrThemeInvalid        = errors.New("the theme must be one of light, dark or system")
	ErrPaydayInvalid       = errors.New("the payday must be a day of the month between 1 and 31")
	ErrPasscodeInvalid     = errors.New("the passcode must consist of exactly four digits")
	ErrButtonCountInvalid  = errors.New("the quick expense button count must be between 3 and 6")
	ErrNoActiveGoal        = errors.New("there is no active savings goal")
	ErrInsufficientBalance = errors.New("the remaining balance for this month is not sufficient")
	ErrBackupInvalid       = errors.New("the backup file is missing required fields")
	ErrBackupUnparseable   = errors.New("the backup file could not be parsed")
	ErrKeywordEmpty        = errors.New("the keyword must not be empty")
)
