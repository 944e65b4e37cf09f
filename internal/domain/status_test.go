package domain

import (
	"encoding/json"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func sampleClasses() map[string]StatusClass {
	return map[string]StatusClass{
		"PurchaseOrderStatus": {
			Class: "PurchaseOrderStatus",
			Values: map[string]StatusCode{
				"PLACED":  {Key: 20, Label: "Placed", Color: "primary"},
				"PENDING": {Key: 10, Label: "Pending", Color: "secondary"},
			},
		},
		"CustomStatus": {
			Values: map[string]StatusCode{
				"OK": {Key: 1, Name: "OK", Label: "Fine"},
			},
		},
	}
}

func TestStatusLookup(t *testing.T) {
	convey.Convey("Given a status lookup built from server classes", t, func() {
		lookup := NewStatusLookup(sampleClasses())

		convey.Convey("Then known classes map to their model type", func() {
			codes := lookup[ModelPurchaseOrder]
			convey.So(codes, convey.ShouldHaveLength, 2)
			convey.So(codes[0].Key, convey.ShouldEqual, 10)
			convey.So(codes[0].Name, convey.ShouldEqual, "PENDING")
			convey.So(codes[1].Label, convey.ShouldEqual, "Placed")
		})

		convey.Convey("Then unknown classes keep their class name", func() {
			convey.So(lookup[ModelType("CustomStatus")], convey.ShouldHaveLength, 1)
		})

		convey.Convey("When resolving labels", func() {
			convey.So(lookup.Label(ModelPurchaseOrder, 20), convey.ShouldEqual, "Placed")
			convey.So(lookup.Label(ModelPurchaseOrder, 99), convey.ShouldEqual, "99")
			convey.So(lookup.Label(ModelSalesOrder, 10), convey.ShouldEqual, "10")
		})

		convey.Convey("When parsing labels", func() {
			value, ok := lookup.Parse(ModelPurchaseOrder, "placed")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(value, convey.ShouldEqual, 20)

			value, ok = lookup.Parse(ModelPurchaseOrder, "pending")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(value, convey.ShouldEqual, 10)

			_, ok = lookup.Parse(ModelPurchaseOrder, "shipped")
			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}

func TestInstanceAccessors(t *testing.T) {
	convey.Convey("Given a decoded instance", t, func() {
		inst := Instance{
			"reference":       "PO-0001",
			"pk":              float64(12),
			"supplier_detail": map[string]any{"name": "ACME"},
			"notes":           nil,
		}

		convey.So(inst.String("reference"), convey.ShouldEqual, "PO-0001")
		convey.So(inst.String("pk"), convey.ShouldEqual, "12")
		convey.So(inst.Int("pk"), convey.ShouldEqual, 12)
		convey.So(inst.String("notes"), convey.ShouldEqual, "")
		convey.So(inst.String("missing"), convey.ShouldEqual, "")
		convey.So(inst.Detail("supplier_detail").String("name"), convey.ShouldEqual, "ACME")
		convey.So(inst.Detail("customer_detail"), convey.ShouldBeEmpty)
		convey.So(inst.Detail("reference"), convey.ShouldBeEmpty)
		convey.So(inst.FirstString("missing", "reference"), convey.ShouldEqual, "PO-0001")
	})

	convey.Convey("Given values decoded with UseNumber or as text", t, func() {
		inst := Instance{
			"pk":       json.Number("42"),
			"quantity": json.Number("2.5"),
			"line":     "7",
			"status":   "open",
			"detail":   map[string]any{"pk": 1},
		}

		convey.So(inst.String("pk"), convey.ShouldEqual, "42")
		convey.So(inst.Int("pk"), convey.ShouldEqual, 42)
		convey.So(inst.String("quantity"), convey.ShouldEqual, "2.5")
		convey.So(inst.Int("line"), convey.ShouldEqual, 7)
		convey.So(inst.Int("status"), convey.ShouldEqual, 0)
		convey.So(inst.Int("missing"), convey.ShouldEqual, 0)
		convey.So(inst.String("detail"), convey.ShouldEqual, "")
	})
}

func TestServerInfo(t *testing.T) {
	info := ServerInfo{"version": "0.14.0", "apiVersion": float64(160), "instance": "InvenTree"}
	if info.Version() != "0.14.0" {
		t.Fatalf("unexpected version %q", info.Version())
	}
	if info.APIVersion() != 160 {
		t.Fatalf("unexpected api version %d", info.APIVersion())
	}
	if info.InstanceName() != "InvenTree" {
		t.Fatalf("unexpected instance %q", info.InstanceName())
	}
}
