package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andresuchdata/inventree-web/internal/domain"
)

// ErrUnknownModel is returned when no inline renderer exists for a model type.
var ErrUnknownModel = errors.New("no inline renderer for model")

// Inline is the compact summary of an instance shown in lists and selectors.
type Inline struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Image     string `json:"image,omitempty"`
}

// String returns "primary - secondary", omitting empty parts.
func (i Inline) String() string {
	parts := make([]string, 0, 2)
	if i.Primary != "" {
		parts = append(parts, i.Primary)
	}
	if i.Secondary != "" {
		parts = append(parts, i.Secondary)
	}
	return strings.Join(parts, " - ")
}

// Renderer produces an inline summary for one model type.
type Renderer func(instance domain.Instance) Inline

var renderers = map[domain.ModelType]Renderer{
	domain.ModelPurchaseOrder:      PurchaseOrder,
	domain.ModelReturnOrder:        ReturnOrder,
	domain.ModelSalesOrder:         SalesOrder,
	domain.ModelSalesOrderShipment: SalesOrderShipment,
}

// Instance dispatches to the renderer registered for model.
func Instance(model domain.ModelType, instance domain.Instance) (Inline, error) {
	render, ok := renderers[model]
	if !ok {
		return Inline{}, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	if instance == nil {
		instance = domain.Instance{}
	}
	return render(instance), nil
}

// Models lists the model types that have an inline renderer.
func Models() []domain.ModelType {
	return []domain.ModelType{
		domain.ModelPurchaseOrder,
		domain.ModelReturnOrder,
		domain.ModelSalesOrder,
		domain.ModelSalesOrderShipment,
	}
}

// companyImage picks the thumbnail of a company detail, falling back to the
// full image when the API omitted the thumbnail. Order renderers show the
// company at avatar size, so the smaller rendition wins whenever both exist.
func companyImage(company domain.Instance) string {
	return company.FirstString("thumbnail", "image")
}
