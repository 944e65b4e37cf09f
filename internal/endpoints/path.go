package endpoints

// Path returns the URL fragment for e relative to the API prefix. Fragments
// starting with "/" are rooted at the server and bypass the prefix. Unknown
// endpoints yield an empty string.
func Path(e Endpoint) string {
	switch e {
	case UserRoles:
		return "user/roles/"
	case UserToken:
		return "user/token/"
	case UserSimpleLogin:
		return "email/generate/"
	case UserReset:
		return "/auth/password/reset/"
	case UserResetSet:
		return "/auth/password/reset/confirm/"
	case UserChangePassword:
		return "/auth/password/change/"
	case UserSSO:
		return "auth/social/"
	case UserSSORemove:
		return "auth/social/:id/disconnect/"
	case UserEmails:
		return "auth/emails/"
	case UserEmailVerify:
		return "auth/emails/:id/verify/"
	case UserEmailPrimary:
		return "auth/emails/:id/primary/"
	case UserEmailRemove:
		return "auth/emails/:id/remove/"
	case UserLogin:
		return "/auth/login/"
	case UserLogout:
		return "/auth/logout/"
	case UserList:
		return "user/"
	case OwnerList:
		return "user/owner/"

	case APIServerInfo:
		return ""
	case APIVersion:
		return "version/"
	case GlobalStatus:
		return "generic/status/"
	case APISearch:
		return "search/"
	case Barcode:
		return "barcode/"
	case News:
		return "news/"
	case NotificationsList:
		return "notifications/"
	case NotificationsReadAll:
		return "notifications/readall/"
	case CurrencyList:
		return "currency/exchange/"
	case CurrencyRefresh:
		return "currency/refresh/"
	case SettingsGlobalList:
		return "settings/global/"
	case SettingsUserList:
		return "settings/user/"
	case TaskOverview:
		return "background-task/"
	case TaskPendingList:
		return "background-task/pending/"
	case TaskScheduledList:
		return "background-task/scheduled/"
	case TaskFailedList:
		return "background-task/failed/"
	case ProjectCodeList:
		return "project-code/"
	case CustomUnitList:
		return "units/"
	case ContentTypeList:
		return "contenttype/"
	case ErrorReportList:
		return "error-report/"

	case BuildOrderList:
		return "build/"
	case BuildOrderAttachmentList:
		return "build/attachment/"
	case BuildLineList:
		return "build/line/"
	case BomList:
		return "bom/"

	case PartList:
		return "part/"
	case PartParameterList:
		return "part/parameter/"
	case PartParameterTemplateList:
		return "part/parameter/template/"
	case PartThumbsList:
		return "part/thumbs/"
	case PartPricingGet:
		return "part/:id/pricing/"
	case PartAttachmentList:
		return "part/attachment/"
	case PartTestTemplateList:
		return "part/test-template/"
	case RelatedPartList:
		return "part/related/"
	case CategoryList:
		return "part/category/"
	case CategoryTree:
		return "part/category/tree/"

	case CompanyList:
		return "company/"
	case ContactList:
		return "company/contact/"
	case AddressList:
		return "company/address/"
	case CompanyAttachmentList:
		return "company/attachment/"
	case SupplierPartList:
		return "company/part/"
	case ManufacturerPartList:
		return "company/part/manufacturer/"
	case ManufacturerPartAttachmentList:
		return "company/part/manufacturer/attachment/"
	case ManufacturerPartParameterList:
		return "company/part/manufacturer/parameter/"

	case StockItemList:
		return "stock/"
	case StockTrackingList:
		return "stock/track/"
	case StockLocationList:
		return "stock/location/"
	case StockLocationTypeList:
		return "stock/location-type/"
	case StockLocationTree:
		return "stock/location/tree/"
	case StockAttachmentList:
		return "stock/attachment/"
	case StockTestResultList:
		return "stock/test/"

	case PurchaseOrderList:
		return "order/po/"
	case PurchaseOrderLineList:
		return "order/po-line/"
	case PurchaseOrderAttachmentList:
		return "order/po/attachment/"
	case SalesOrderList:
		return "order/so/"
	case SalesOrderLineList:
		return "order/so-line/"
	case SalesOrderAttachmentList:
		return "order/so/attachment/"
	case SalesOrderShipmentList:
		return "order/so/shipment/"
	case ReturnOrderList:
		return "order/ro/"
	case ReturnOrderLineList:
		return "order/ro-line/"
	case ReturnOrderAttachmentList:
		return "order/ro/attachment/"

	case PluginList:
		return "plugins/"
	case PluginSettingList:
		return "plugins/:plugin/settings/"
	case PluginRegistryStatus:
		return "plugins/status/"
	case PluginInstall:
		return "plugins/install/"
	case PluginReload:
		return "plugins/reload/"
	case PluginActivate:
		return "plugins/:key/activate/"

	case LabelList:
		return "label/template/"
	case LabelPrint:
		return "label/print/"
	case ReportList:
		return "report/template/"
	case ReportPrint:
		return "report/print/"
	default:
		return ""
	}
}
