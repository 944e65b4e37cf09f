package endpoints

// Endpoint identifies one REST resource collection on the backend.
type Endpoint string

const (
	// User and authentication
	UserRoles          Endpoint = "user_roles"
	UserToken          Endpoint = "user_token"
	UserSimpleLogin    Endpoint = "user_simple_login"
	UserReset          Endpoint = "user_reset"
	UserResetSet       Endpoint = "user_reset_set"
	UserChangePassword Endpoint = "user_change_password"
	UserSSO            Endpoint = "user_sso"
	UserSSORemove      Endpoint = "user_sso_remove"
	UserEmails         Endpoint = "user_emails"
	UserEmailVerify    Endpoint = "user_email_verify"
	UserEmailPrimary   Endpoint = "user_email_primary"
	UserEmailRemove    Endpoint = "user_email_remove"
	UserLogin          Endpoint = "user_login"
	UserLogout         Endpoint = "user_logout"
	UserList           Endpoint = "user_list"
	OwnerList          Endpoint = "owner_list"

	// Generic API endpoints
	APIServerInfo        Endpoint = "api_server_info"
	APIVersion           Endpoint = "api_version"
	GlobalStatus         Endpoint = "global_status"
	APISearch            Endpoint = "api_search"
	Barcode              Endpoint = "barcode"
	News                 Endpoint = "news"
	NotificationsList    Endpoint = "notifications_list"
	NotificationsReadAll Endpoint = "notifications_readall"
	CurrencyList         Endpoint = "currency_list"
	CurrencyRefresh      Endpoint = "currency_refresh"
	SettingsGlobalList   Endpoint = "settings_global_list"
	SettingsUserList     Endpoint = "settings_user_list"
	TaskOverview         Endpoint = "task_overview"
	TaskPendingList      Endpoint = "task_pending_list"
	TaskScheduledList    Endpoint = "task_scheduled_list"
	TaskFailedList       Endpoint = "task_failed_list"
	ProjectCodeList      Endpoint = "project_code_list"
	CustomUnitList       Endpoint = "custom_unit_list"
	ContentTypeList      Endpoint = "content_type_list"
	ErrorReportList      Endpoint = "error_report_list"

	// Build order
	BuildOrderList           Endpoint = "build_order_list"
	BuildOrderAttachmentList Endpoint = "build_order_attachment_list"
	BuildLineList            Endpoint = "build_line_list"
	BomList                  Endpoint = "bom_list"

	// Part
	PartList                  Endpoint = "part_list"
	PartParameterList         Endpoint = "part_parameter_list"
	PartParameterTemplateList Endpoint = "part_parameter_template_list"
	PartThumbsList            Endpoint = "part_thumbs_list"
	PartPricingGet            Endpoint = "part_pricing_get"
	PartAttachmentList        Endpoint = "part_attachment_list"
	PartTestTemplateList      Endpoint = "part_test_template_list"
	RelatedPartList           Endpoint = "related_part_list"
	CategoryList              Endpoint = "category_list"
	CategoryTree              Endpoint = "category_tree"

	// Company
	CompanyList                    Endpoint = "company_list"
	ContactList                    Endpoint = "contact_list"
	AddressList                    Endpoint = "address_list"
	CompanyAttachmentList          Endpoint = "company_attachment_list"
	SupplierPartList               Endpoint = "supplier_part_list"
	ManufacturerPartList           Endpoint = "manufacturer_part_list"
	ManufacturerPartAttachmentList Endpoint = "manufacturer_part_attachment_list"
	ManufacturerPartParameterList  Endpoint = "manufacturer_part_parameter_list"

	// Stock
	StockItemList         Endpoint = "stock_item_list"
	StockTrackingList     Endpoint = "stock_tracking_list"
	StockLocationList     Endpoint = "stock_location_list"
	StockLocationTypeList Endpoint = "stock_location_type_list"
	StockLocationTree     Endpoint = "stock_location_tree"
	StockAttachmentList   Endpoint = "stock_attachment_list"
	StockTestResultList   Endpoint = "stock_test_result_list"

	// Orders
	PurchaseOrderList           Endpoint = "purchase_order_list"
	PurchaseOrderLineList       Endpoint = "purchase_order_line_list"
	PurchaseOrderAttachmentList Endpoint = "purchase_order_attachment_list"
	SalesOrderList              Endpoint = "sales_order_list"
	SalesOrderLineList          Endpoint = "sales_order_line_list"
	SalesOrderAttachmentList    Endpoint = "sales_order_attachment_list"
	SalesOrderShipmentList      Endpoint = "sales_order_shipment_list"
	ReturnOrderList             Endpoint = "return_order_list"
	ReturnOrderLineList         Endpoint = "return_order_line_list"
	ReturnOrderAttachmentList   Endpoint = "return_order_attachment_list"

	// Plugins
	PluginList           Endpoint = "plugin_list"
	PluginSettingList    Endpoint = "plugin_setting_list"
	PluginRegistryStatus Endpoint = "plugin_registry_status"
	PluginInstall        Endpoint = "plugin_install"
	PluginReload         Endpoint = "plugin_reload"
	PluginActivate       Endpoint = "plugin_activate"

	// Labels and reports
	LabelList   Endpoint = "label_list"
	LabelPrint  Endpoint = "label_print"
	ReportList  Endpoint = "report_list"
	ReportPrint Endpoint = "report_print"
)

var all = []Endpoint{
	UserRoles, UserToken, UserSimpleLogin, UserReset, UserResetSet,
	UserChangePassword, UserSSO, UserSSORemove, UserEmails, UserEmailVerify,
	UserEmailPrimary, UserEmailRemove, UserLogin, UserLogout, UserList, OwnerList,

	APIServerInfo, APIVersion, GlobalStatus, APISearch, Barcode, News,
	NotificationsList, NotificationsReadAll, CurrencyList, CurrencyRefresh,
	SettingsGlobalList, SettingsUserList, TaskOverview, TaskPendingList,
	TaskScheduledList, TaskFailedList, ProjectCodeList, CustomUnitList,
	ContentTypeList, ErrorReportList,

	BuildOrderList, BuildOrderAttachmentList, BuildLineList, BomList,

	PartList, PartParameterList, PartParameterTemplateList, PartThumbsList,
	PartPricingGet, PartAttachmentList, PartTestTemplateList, RelatedPartList,
	CategoryList, CategoryTree,

	CompanyList, ContactList, AddressList, CompanyAttachmentList,
	SupplierPartList, ManufacturerPartList, ManufacturerPartAttachmentList,
	ManufacturerPartParameterList,

	StockItemList, StockTrackingList, StockLocationList, StockLocationTypeList,
	StockLocationTree, StockAttachmentList, StockTestResultList,

	PurchaseOrderList, PurchaseOrderLineList, PurchaseOrderAttachmentList,
	SalesOrderList, SalesOrderLineList, SalesOrderAttachmentList,
	SalesOrderShipmentList, ReturnOrderList, ReturnOrderLineList,
	ReturnOrderAttachmentList,

	PluginList, PluginSettingList, PluginRegistryStatus, PluginInstall,
	PluginReload, PluginActivate,

	LabelList, LabelPrint, ReportList, ReportPrint,
}

var byName = func() map[string]Endpoint {
	m := make(map[string]Endpoint, len(all))
	for _, e := range all {
		m[string(e)] = e
	}
	return m
}()

// All returns every defined endpoint in declaration order.
func All() []Endpoint {
	out := make([]Endpoint, len(all))
	copy(out, all)
	return out
}

// Lookup parses an endpoint from its string key.
func Lookup(name string) (Endpoint, bool) {
	e, ok := byName[name]
	return e, ok
}

func (e Endpoint) String() string {
	return string(e)
}
