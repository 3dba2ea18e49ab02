package messaging

type ChangeTopic string

const (
	CatalogSnapshotTopic ChangeTopic = "catalog_snapshot"
	CartQuotedTopic      ChangeTopic = "cart_quoted"
	TrackingTopic        ChangeTopic = "tracking"
)
