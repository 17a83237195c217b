// Package authorization implements role resolution and permission
// enforcement inside the identity-access context.
//
// The module owns the static role/permission table, the per-user role
// assignment store, and the RequirePermission gate every privileged action
// calls before performing its effect. Business rules live in domain and
// application layers; storage and transport concerns stay behind ports and
// adapters.
package authorization
