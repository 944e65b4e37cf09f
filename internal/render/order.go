package render

import "github.com/andresuchdata/inventree-web/internal/domain"

// PurchaseOrder renders a purchase order with its supplier image.
func PurchaseOrder(instance domain.Instance) Inline {
	supplier := instance.Detail("supplier_detail")

	return Inline{
		Primary:   instance.String("reference"),
		Secondary: instance.String("description"),
		Image:     companyImage(supplier),
	}
}

// ReturnOrder renders a return order with its customer image.
func ReturnOrder(instance domain.Instance) Inline {
	customer := instance.Detail("customer_detail")

	return Inline{
		Primary:   instance.String("reference"),
		Secondary: instance.String("description"),
		Image:     companyImage(customer),
	}
}

// SalesOrder renders a sales order with its customer image.
func SalesOrder(instance domain.Instance) Inline {
	customer := instance.Detail("customer_detail")

	return Inline{
		Primary:   instance.String("reference"),
		Secondary: instance.String("description"),
		Image:     companyImage(customer),
	}
}

// SalesOrderShipment renders a shipment under its parent order reference.
func SalesOrderShipment(instance domain.Instance) Inline {
	order := instance.Detail("sales_order_detail")

	return Inline{
		Primary:   order.String("reference"),
		Secondary: "Shipment " + instance.String("description"),
	}
}
