// Package cli implements slideform, the form owner's command line tool.
//
// Commands generate owner key pairs, publish encrypted form definitions,
// mint owner tokens and decrypt collected responses. Key material is only
// ever read from local files or Vault and never sent to the form store.
package cli
