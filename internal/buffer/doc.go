// Package buffer holds the text of the edited file as a sequence of rows.
//
// Every row keeps its raw bytes together with the rendered form (tabs
// expanded) and one highlight per rendered byte. Mutations through Buffer
// keep the rendered form and the highlights of all affected rows current,
// including multi-line comments that span several rows.
package buffer
