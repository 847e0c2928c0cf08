package timesheet

// Sample1 is a week pasted from the attendance portal where the first day
// has no punches and the rest meet the quota.
const Sample1 = `Mon, 27 Oct
Planned Shift : 11:00-21:00
10h 00m
-- : ---- : --
Total TopUp Hrs 10h 00m
Tue, 28 Oct
Planned Shift : 11:00-21:00
10h 46m
09:19 AM
PUN-CDC
08:05 PM
PUN-CDC
Wed, 29 Oct
Planned Shift : 11:00-21:00
10h 01m
11:01 AM
PUN-CDC
08:01 PM
PUN-CDC
Total TopUp Hrs 01h 01m
Thu, 30 Oct
Planned Shift : 11:00-21:00
10h 00m
10:19 AM
PUN-CDC
08:06 PM
PUN-CDC
Total TopUp Hrs 00h 13m
Fri, 31 Oct
Planned Shift : 11:00-21:00
10h 02m
10:22 AM
PUN-CDC
08:05 PM
PUN-CDC
Total TopUp Hrs 00h 19m`

// Sample2 is a week with short days that need a top-up and two days the
// portal has not ported yet.
const Sample2 = `Mon, 01 Dec
Planned Shift : 11:00-21:00
10h 09m
09:59 AM
PUN-CDC
08:08 PM
PUN-CDC
Click here to Apply TopUp
Tue, 02 Dec
Planned Shift : 11:00-21:00
05h 29m
02:36 PM
PUN-CDC
08:06 PM
PUN-CDC
Click here to Apply TopUp
Wed, 03 Dec
Planned Shift : 11:00-21:00
07h 40m
12:28 PM
PUN-CDC
08:08 PM
PUN-CDC
Click here to Apply TopUp
Thu, 04 Dec
Planned Shift : 11:00-21:00
-- h -- m
-- : ---- : --
Data porting in progress
Fri, 05 Dec
Planned Shift : 11:00-21:00
-- h -- m
-- : ---- : --`

// Samples lists the bundled sample pastes in order.
var Samples = []string{Sample1, Sample2}
