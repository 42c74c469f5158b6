/*
Package utils contains decorators shared by every handler stack: panic
recovery, request logging, savepoints that roll back a failed message and
action tagging.
*/
package utils
