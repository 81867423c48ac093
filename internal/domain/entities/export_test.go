package entities

// Descendants exports descendants for testing.
var Descendants = descendants //nolint:gochecknoglobals // test export

// Child exports child for testing.
var Child = child //nolint:gochecknoglobals // test export

// AttributeValue exports attributeValue for testing.
var AttributeValue = attributeValue //nolint:gochecknoglobals // test export
