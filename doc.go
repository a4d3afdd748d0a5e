/*
Package devsettings reads and writes the sysfs attributes that device settings
panels use to switch hardware features such as LEDs, vibration strength and
audio tunables.

Ref: https://www.kernel.org/doc/Documentation/filesystems/sysfs.txt

Each attribute holds a single line of text. A missing or unreadable attribute
means the feature is not available on the running device, so readers take a
default value instead of failing. Attributes in the dual-value format are
encoded by package github.com/mkch/devsettings/dual.
*/
package devsettings
