package domain

// ModelType names a backend model class as used by the web frontend.
type ModelType string

const (
	ModelPart               ModelType = "part"
	ModelPartCategory       ModelType = "partcategory"
	ModelSupplierPart       ModelType = "supplierpart"
	ModelManufacturerPart   ModelType = "manufacturerpart"
	ModelCompany            ModelType = "company"
	ModelStockItem          ModelType = "stockitem"
	ModelStockLocation      ModelType = "stocklocation"
	ModelStockHistory       ModelType = "stockhistory"
	ModelBuildOrder         ModelType = "build"
	ModelPurchaseOrder      ModelType = "purchaseorder"
	ModelSalesOrder         ModelType = "salesorder"
	ModelSalesOrderShipment ModelType = "salesordershipment"
	ModelReturnOrder        ModelType = "returnorder"
	ModelReturnOrderLine    ModelType = "returnorderlineitem"
	ModelImportSession      ModelType = "importsession"
)

// ServerInfo is the untyped metadata snapshot returned by the API root.
type ServerInfo map[string]any

// Version returns the server software version, if reported.
func (s ServerInfo) Version() string {
	return Instance(s).String("version")
}

// APIVersion returns the numeric API version, or 0 when absent.
func (s ServerInfo) APIVersion() int {
	return Instance(s).Int("apiVersion")
}

// InstanceName returns the configured server instance name.
func (s ServerInfo) InstanceName() string {
	return Instance(s).String("instance")
}

// StatusCode is one label/value pair of a status enumeration.
type StatusCode struct {
	Key   int    `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// StatusClass is the server representation of one status enumeration.
type StatusClass struct {
	Class  string                `json:"class"`
	Values map[string]StatusCode `json:"values"`
}

// statusClassModels maps server status class names to the model they describe.
var statusClassModels = map[string]ModelType{
	"BuildStatus":           ModelBuildOrder,
	"PurchaseOrderStatus":   ModelPurchaseOrder,
	"ReturnOrderStatus":     ModelReturnOrder,
	"ReturnOrderLineStatus": ModelReturnOrderLine,
	"SalesOrderStatus":      ModelSalesOrder,
	"StockHistoryCode":      ModelStockHistory,
	"StockStatus":           ModelStockItem,
	"DataImportStatusCode":  ModelImportSession,
}

// ModelForStatusClass returns the model type a status class applies to. Unknown
// classes map to a model type named after the class itself.
func ModelForStatusClass(class string) ModelType {
	if model, ok := statusClassModels[class]; ok {
		return model
	}
	return ModelType(class)
}

// ServerAPIState is the cached server metadata persisted per session. Either
// field is nil until the corresponding fetch has completed.
type ServerAPIState struct {
	Server ServerInfo   `json:"server,omitempty"`
	Status StatusLookup `json:"status,omitempty"`
}
