package constvars

// Paths of the remote MedCare service consumed through the gateway.
const (
	EndpointHealth          = "/health"
	EndpointSignup          = "/signup"
	EndpointLogin           = "/login"
	EndpointDoctors         = "/doctors"
	EndpointDoctorSlots     = "/doctors/%d/available"
	EndpointBook            = "/book"
	EndpointAppointment     = "/appointments/%d"
	EndpointReschedule      = "/appointments/%d/reschedule"
	EndpointUserAppts       = "/users/%d/appointments"
	EndpointUserRx          = "/users/%d/prescriptions"
	EndpointConsult         = "/consult"
	EndpointMedicines       = "/medicines"
	EndpointMedicinesByAppt = "/medicines?appointment_id=%d"
	EndpointMedicineSearch  = "/medicines/search?name=%s"
	EndpointRestock         = "/medicines/%d/restock?quantity=%d"
	EndpointBuyBulk         = "/buy_bulk"
	EndpointBuyPrescription = "/buy_prescription"
	EndpointRatings         = "/ratings/%d"
	EndpointSalesReport     = "/reports/sales"
)
