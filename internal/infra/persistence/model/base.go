// Package model holds the GORM row structs of every table.
// The types are exported so the GORM Gen tool and the migrate command can use them.
package model

import "github.com/google/uuid"

// assignID fills a missing primary key with a time-ordered UUID.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&AddressModel{},
		&UserDeviceModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductSizeModel{},
		&ReviewModel{},
		&WishlistModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&SettingModel{},
		&PostModel{},
		&PageModel{},
	}
}
