// Package knowledge is the client for the remote knowledge store that holds
// both the location entities and the directory nodes derived from them.
//
// # Entities
//
// Entity models the fields the directory cares about (meta, name, address and
// the hierarchy linkage fields parentRef, childRefs and updatedAt). Any other
// field received from the store is kept verbatim in Entity.Extra and written
// back unchanged, so a round trip never drops data.
//
// # Client
//
// Client talks to the store's REST API. Every request carries the configured
// API key and API version as query parameters. A 404 on Get or Delete is a
// normal "absent" outcome; every other non-2xx status is returned as a
// *RemoteError carrying the status and response body.
//
//	client, err := knowledge.NewClient(cfg.Knowledge)
//	entity, err := client.Get(ctx, "loc1")
//	if entity == nil {
//	    // not found
//	}
package knowledge
