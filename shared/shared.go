package shared

import (
	"net/url"
)

// JoinPath appends an entity id to a resource path, escaping the id.
func JoinPath(resource, id string) string {
	return resource + "/" + url.PathEscape(id)
}
