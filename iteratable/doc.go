/*
Package iteratable implements an iteratable container data structure.

Set is a special-purpose set of strings, suitable for implementing
fixpoint algorithms such as FIRST/FOLLOW-set computation: clients need
to know not just whether a union changed a set, but to iterate its
members deterministically afterwards for table construction, dumping
and hashing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
