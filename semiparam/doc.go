// Package semiparam implements the semiparametric IRWLS engine: a weighted
// least squares solve over a fixed, small centroid basis selected
// beforehand by sgma.Select.
package semiparam
