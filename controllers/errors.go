package controllers

import "errors"

var ErrCategoryInUse = errors.New("category still has menu items")
