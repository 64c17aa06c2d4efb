package session

// User-facing texts, kept in Persian as shipped.
const (
	msgGreeting       = "سلام! برای ثبت حضور یا دریافت گزارش‌ها از منوی زیر استفاده کنید."
	msgEnterRecorded  = "✅ ورود ثبت شد: %s | %s"
	msgExitRecorded   = "✅ خروج ثبت شد: %s | %s"
	msgEnterDuplicate = "⚠️ شما قبلاً امروز ورود را ثبت کرده‌اید."
	msgExitDuplicate  = "⚠️ شما قبلاً امروز خروج را ثبت کرده‌اید."
	msgNothing        = "📋 موردی ثبت نشده است."
	msgNotAdmin       = "❌ شما ادمین نیستید."
	msgAdminsOnly     = "❌ دسترسی فقط برای ادمین‌ها."
	msgAdminPanel     = "🔐 پنل ادمین:"
	msgBackToMenu     = "🔙 بازگشت به منوی اصلی"
	msgInternalError  = "⚠️ خطای داخلی رخ داد. بعداً دوباره تلاش کنید."

	msgAskPeriod      = "📆 ماه مورد نظر را به صورت YYYY-MM (شمسی) وارد کنید."
	msgBadPeriod      = "⚠️ قالب نادرست است. نمونه: 1403-05"
	msgAskScope       = "گزارش برای همه یا یک کاربر؟ («همه» یا «تکی»)"
	msgBadScope       = "⚠️ لطفاً «همه» یا «تکی» را وارد کنید."
	msgAskTarget      = "کد پرسنلی یا شناسه کاربر را وارد کنید."
	msgTargetNotFound = "❌ کاربری یافت نشد. دوباره تلاش کنید."
	msgAskNewName     = "نام نمایشی جدید را وارد کنید."
	msgBadNewName     = "⚠️ نام نمایشی نمی‌تواند خالی باشد."
	msgRenamed        = "✅ نام نمایشی ثبت شد: %s"

	msgUsersHeader       = "👥 لیست کاربران:"
	msgDailySelfHeader   = "📅 گزارش روزانه شما:"
	msgDailyAllHeader    = "📅 گزارش روزانه همه:"
	msgMonthlyHeader     = "📅 گزارش ماهانه (%s) %d-%02d:"
	msgExportHeader      = "📦 خروجی کامل حضور و غیاب:"
	msgSetNameUsage      = "📌 نحوه استفاده:\n/setname <کد یا شناسه> نام_جدید"
	msgReportMonthUsage  = "📌 نحوه استفاده:\n/report_month <کد یا شناسه> [YYYY-MM]"
	scopeTokenAll        = "همه"
	scopeTokenSingle     = "تکی"
)
