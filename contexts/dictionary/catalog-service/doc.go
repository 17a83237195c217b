// Package catalogservice implements the dictionary catalog inside the
// dictionary context.
//
// The module owns Terms (the headwords Neos are suggested for) and the
// translation-request intake that feeds them: contributors file a request,
// jurors review it, and approval publishes a Term atomically with the
// review verdict. Terms are read-only for the curation workflow.
package catalogservice
