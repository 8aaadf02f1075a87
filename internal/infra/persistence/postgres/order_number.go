package postgres

import (
	"context"
	"strconv"
	"time"

	"aurelise/config"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"

	"gorm.io/gorm"
)

const orderNumberFunction = "generate_order_number"

// orderNumberGenerator asks the database for the next order number and falls back
// to a prefixed millisecond timestamp when the function is unavailable.
type orderNumberGenerator struct {
	db     *gorm.DB
	prefix string
	now    func() time.Time
}

// NewOrderNumberGenerator is the constructor for orderNumberGenerator.
func NewOrderNumberGenerator(db *gorm.DB, cfg *config.Config) service.OrderNumberGenerator {
	prefix := ""
	if cfg != nil && cfg.Orders != nil {
		prefix = cfg.Orders.NumberPrefix
	}

	return &orderNumberGenerator{db: db, prefix: prefix, now: time.Now}
}

// Generate returns a new order number.
func (g *orderNumberGenerator) Generate(ctx context.Context) (string, error) {
	if g.db != nil && g.db.Dialector.Name() == "postgres" {
		var number string
		err := g.db.WithContext(ctx).Raw("SELECT " + orderNumberFunction + "()").Scan(&number).Error
		if err == nil && number != "" {
			return number, nil
		}
		if err != nil && ctx.Err() != nil {
			return "", errors.Wrap(err, "failed to generate order number")
		}
	}

	return g.prefix + strconv.FormatInt(g.now().UnixMilli(), 10), nil
}

// OrderNumberFunctionSQL creates the sequence-backed generator used by Generate.
const OrderNumberFunctionSQL = `
CREATE SEQUENCE IF NOT EXISTS order_number_seq;
CREATE OR REPLACE FUNCTION ` + orderNumberFunction + `() RETURNS text AS $$
	SELECT 'AUR-' || to_char(now(), 'YYYYMMDD') || '-' || lpad(nextval('order_number_seq')::text, 4, '0');
$$ LANGUAGE sql;`
